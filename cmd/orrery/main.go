package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/helioviz/orrery"
)

var (
	bodyName    string
	missionName string
	date        string
)

func init() {
	flag.StringVar(&bodyName, "body", "earth", "celestial body to locate")
	flag.StringVar(&missionName, "mission", "", "print this catalog mission's trajectory instead of a body position")
	flag.StringVar(&date, "date", orrery.CurrentDateString(), "civil date, YYYY-MM-DD")
}

func main() {
	flag.Parse()
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "orrery")

	if missionName != "" {
		mission, err := orrery.MissionFromString(missionName)
		if err != nil {
			klog.Log("level", "error", "err", err)
			os.Exit(1)
		}
		traj := mission.Trajectory()
		fracs := mission.WaypointProgressFractions()
		for i, idx := range traj.WaypointIndices {
			pt := traj.Points[idx]
			fmt.Printf("%-24s %s  progress=%.3f  scene=(%8.2f, %8.2f, %8.2f)\n",
				mission.Waypoints[i].Name, traj.Dates[idx], fracs[i], pt[0], pt[1], pt[2])
		}
		return
	}

	body, err := orrery.CelestialBodyFromString(bodyName)
	if err != nil {
		klog.Log("level", "error", "err", err)
		os.Exit(1)
	}
	R := body.HeliocentricPosition(date)
	S := orrery.ToSceneCoordinates(body.Name, R)
	r := math.Sqrt(R[0]*R[0] + R[1]*R[1] + R[2]*R[2])
	klog.Log("level", "info", "body", body.Name, "date", date, "r(AU)", fmt.Sprintf("%.6f", r),
		"helio(AU)", fmt.Sprintf("(%.6f, %.6f, %.6f)", R[0], R[1], R[2]),
		"scene", fmt.Sprintf("(%.2f, %.2f, %.2f)", S[0], S[1], S[2]))
}

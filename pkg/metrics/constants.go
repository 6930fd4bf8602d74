package metrics

// Habitability guidance thresholds. The per-crew floor follows long-duration
// habitability studies that put the minimum acceptable pressurized volume per
// crew member at 25 m3 for multi-month missions.
const (
	MinPerCrewVolumeM3 = 25.0 // m3 per crew member
	SleepingPerCrew    = 0.5  // sleeping zones required per crew member
	DenseFloorShare    = 0.35 // occupied floor share worth flagging
)

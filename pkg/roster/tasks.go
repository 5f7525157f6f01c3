package roster

import (
	"math"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

// taskDemandFloor derives a minimum daily headcount from task coverage
// requirements: for every daily or continuous segment, the peak concurrent
// staffing implied by its duty cycle plus mandatory rest is
// ceil((duration + rest) / duration * requiredPeople). Other frequencies
// are the shift-assignment layer's concern and impose no rotation-wide
// floor.
func taskDemandFloor(tasks []models.TaskTemplate) int {
	floor := 0
	for _, t := range tasks {
		for _, seg := range t.Segments {
			if seg.Frequency != models.FrequencyDaily && seg.Frequency != models.FrequencyContinuous {
				continue
			}
			if seg.DurationHours <= 0 || seg.RequiredPeople <= 0 {
				continue
			}
			need := math.Ceil((seg.DurationHours + seg.RestHours) / seg.DurationHours * float64(seg.RequiredPeople))
			floor += int(need)
		}
	}
	return floor
}

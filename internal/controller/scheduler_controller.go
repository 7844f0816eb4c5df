// internal/controller/scheduler_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/linkedlift/engagement-backend/internal/service"
)

type SchedulerController struct {
	Scheduler *service.SchedulerService
}

// RunScheduler is the periodic trigger entry point. It takes no payload and
// reports how many rules were evaluated and how many items were scheduled.
func (c *SchedulerController) RunScheduler(w http.ResponseWriter, r *http.Request) {
	result, err := c.Scheduler.Run()
	if err != nil {
		log.Println("❌ Scheduler run failed:", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	log.Printf("✅ Scheduler run: %d rules processed, %d items scheduled\n",
		result.RulesProcessed, result.TotalScheduled)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"rulesProcessed": result.RulesProcessed,
		"totalScheduled": result.TotalScheduled,
	})
}

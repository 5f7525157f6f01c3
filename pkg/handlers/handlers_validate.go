package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/arnavshah/roster-api-go/pkg/models"
)

var validate = validator.New()

// ValidateInput checks a roster request structurally without running the
// engine: date formats, duplicate person IDs, and constraint/absence
// references to unknown people.
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.RosterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if err := validate.Var(input.StartDate, "required,datetime=2006-01-02"); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "start_date must be YYYY-MM-DD"})
		return
	}
	if err := validate.Var(input.EndDate, "required,datetime=2006-01-02"); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "end_date must be YYYY-MM-DD"})
		return
	}

	if len(input.People) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "At least one person is required"})
		return
	}

	personIDs := make(map[string]bool, len(input.People))
	for _, p := range input.People {
		if personIDs[p.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate person ID: " + p.ID})
			return
		}
		personIDs[p.ID] = true
	}

	for _, cons := range input.Constraints {
		if !personIDs[cons.PersonID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Constraint references unknown person: " + cons.PersonID})
			return
		}
	}
	for _, a := range input.Absences {
		if !personIDs[a.PersonID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Absence references unknown person: " + a.PersonID})
			return
		}
	}

	if input.Mode == models.ModeTasks && len(input.Tasks) == 0 {
		c.JSON(http.StatusOK, gin.H{"valid": false, "error": "tasks mode requires at least one task template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"person_count":     len(input.People),
			"constraint_count": len(input.Constraints),
			"absence_count":    len(input.Absences),
		},
	})
}

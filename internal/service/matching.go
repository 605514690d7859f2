package service

import (
	"fmt"
	"sort"

	"github.com/voltline/backend/internal/lifecycle"
	"github.com/voltline/backend/internal/models"
	"github.com/voltline/backend/internal/utils"
)

type MatchResult struct {
	Matches    []models.TechnicianApplication
	ReasonCode string
	ReasonText string
}

// MatchTechnicians returns the accepted applications whose specialization
// covers the request's service type, most experienced first. Ties on
// experience break deterministically so repeated calls for the same request
// return the same order.
func MatchTechnicians(req models.ServiceRequest, apps []models.TechnicianApplication) MatchResult {
	result := MatchResult{}

	accepted := filterApplications(apps, func(a models.TechnicianApplication) bool {
		return a.Status == lifecycle.ApplicationAccepted
	})
	if len(accepted) == 0 {
		result.ReasonCode = "NO_ACCEPTED_TECHNICIANS"
		result.ReasonText = "No accepted technician applications"
		return result
	}

	covering := filterApplications(accepted, func(a models.TechnicianApplication) bool {
		return Covers(a.Specialization, req.ServiceType)
	})
	if len(covering) == 0 {
		result.ReasonCode = "NO_SPECIALIZATION_MATCH"
		result.ReasonText = "No accepted technician covers " + req.ServiceType
		return result
	}

	sort.SliceStable(covering, func(i, j int) bool {
		a, b := covering[i], covering[j]
		if a.YearsExperience != b.YearsExperience {
			return a.YearsExperience > b.YearsExperience
		}
		return tieBreak(req.ID, a.ID) < tieBreak(req.ID, b.ID)
	})

	result.Matches = covering
	result.ReasonCode = "MATCHED"
	result.ReasonText = fmt.Sprintf("%d technicians cover %s", len(covering), req.ServiceType)
	return result
}

// Covers reports whether a technician specialization can serve a requested
// service type. "both" on the technician side covers everything; a request
// for "both" needs a technician who handles both trades.
func Covers(specialization, serviceType string) bool {
	if specialization == "both" {
		return true
	}
	return specialization == serviceType
}

func filterApplications(apps []models.TechnicianApplication, keep func(models.TechnicianApplication) bool) []models.TechnicianApplication {
	var out []models.TechnicianApplication
	for _, a := range apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

func tieBreak(requestID, applicationID int64) uint64 {
	return utils.HashStringToUint64(fmt.Sprintf("%d:%d", requestID, applicationID))
}

package service

import (
	"testing"

	"github.com/voltline/backend/internal/models"
)

func TestMatchTechniciansFiltersAndOrders(t *testing.T) {
	apps := []models.TechnicianApplication{
		{ID: 1, Specialization: "solar", YearsExperience: 3, Status: "accepted"},
		{ID: 2, Specialization: "electrical", YearsExperience: 10, Status: "accepted"},
		{ID: 3, Specialization: "both", YearsExperience: 7, Status: "accepted"},
		{ID: 4, Specialization: "solar", YearsExperience: 15, Status: "pending"},
	}
	req := models.ServiceRequest{ID: 9, ServiceType: "solar"}

	res := MatchTechnicians(req, apps)
	if res.ReasonCode != "MATCHED" {
		t.Fatalf("expected MATCHED, got %s", res.ReasonCode)
	}
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].ID != 3 {
		t.Fatalf("expected most experienced covering tech first, got %d", res.Matches[0].ID)
	}
	if res.Matches[1].ID != 1 {
		t.Fatalf("expected solar tech second, got %d", res.Matches[1].ID)
	}
}

func TestMatchTechniciansDeterministicTieBreak(t *testing.T) {
	apps := []models.TechnicianApplication{
		{ID: 1, Specialization: "solar", YearsExperience: 5, Status: "accepted"},
		{ID: 2, Specialization: "solar", YearsExperience: 5, Status: "accepted"},
		{ID: 3, Specialization: "solar", YearsExperience: 5, Status: "accepted"},
	}
	req := models.ServiceRequest{ID: 7, ServiceType: "solar"}

	first := MatchTechnicians(req, apps)
	second := MatchTechnicians(req, apps)
	for i := range first.Matches {
		if first.Matches[i].ID != second.Matches[i].ID {
			t.Fatalf("expected deterministic ordering")
		}
	}
}

func TestMatchTechniciansNoAccepted(t *testing.T) {
	apps := []models.TechnicianApplication{
		{ID: 1, Specialization: "solar", YearsExperience: 5, Status: "pending"},
	}
	res := MatchTechnicians(models.ServiceRequest{ServiceType: "solar"}, apps)
	if res.ReasonCode != "NO_ACCEPTED_TECHNICIANS" {
		t.Fatalf("expected NO_ACCEPTED_TECHNICIANS, got %s", res.ReasonCode)
	}
}

func TestMatchTechniciansNoCoverage(t *testing.T) {
	apps := []models.TechnicianApplication{
		{ID: 1, Specialization: "electrical", YearsExperience: 5, Status: "accepted"},
	}
	res := MatchTechnicians(models.ServiceRequest{ServiceType: "both"}, apps)
	if res.ReasonCode != "NO_SPECIALIZATION_MATCH" {
		t.Fatalf("expected NO_SPECIALIZATION_MATCH, got %s", res.ReasonCode)
	}
}

func TestCovers(t *testing.T) {
	cases := []struct {
		spec, svc string
		want      bool
	}{
		{"both", "electrical", true},
		{"both", "solar", true},
		{"both", "both", true},
		{"solar", "solar", true},
		{"solar", "electrical", false},
		{"electrical", "both", false},
	}
	for _, tc := range cases {
		if got := Covers(tc.spec, tc.svc); got != tc.want {
			t.Errorf("Covers(%q, %q) = %v, want %v", tc.spec, tc.svc, got, tc.want)
		}
	}
}

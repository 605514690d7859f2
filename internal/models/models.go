package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ServiceRequest struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	ServiceType  string    `json:"service_type"`
	Description  string    `json:"description"`
	Urgency      string    `json:"urgency,omitempty"`
	CustomerID   string    `json:"customer_id,omitempty"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Status       string    `json:"status"`
	Lat          *float64  `json:"lat,omitempty"`
	Lon          *float64  `json:"lon,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type TechnicianApplication struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Specialization  string    `json:"specialization"`
	YearsExperience int       `json:"years_experience"`
	Certifications  string    `json:"certifications,omitempty"`
	CoverLetter     string    `json:"cover_letter"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Quote struct {
	ID           int64     `json:"id"`
	RequestID    int64     `json:"request_id"`
	TechnicianID string    `json:"technician_id"`
	Amount       float64   `json:"amount"`
	LaborCost    *float64  `json:"labor_cost,omitempty"`
	MaterialCost *float64  `json:"material_cost,omitempty"`
	Description  string    `json:"description"`
	ValidUntil   time.Time `json:"valid_until"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// FlexInt decodes from either a JSON number or a numeric string, so payloads
// may carry years_experience as 5 or "5".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("not an integer: %q", str)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("not an integer: %s", s)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

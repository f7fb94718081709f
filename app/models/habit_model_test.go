package models

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestCreateHabitRequestValidation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		req     CreateHabitRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: CreateHabitRequest{
				Name:       "Morning run",
				TargetDays: []string{"Monday", "Wednesday", "Friday"},
			},
		},
		{
			name: "valid with start date",
			req: CreateHabitRequest{
				Name:       "Read",
				TargetDays: []string{"Sunday"},
				StartDate:  "2025-01-01",
			},
		},
		{
			name: "missing name",
			req: CreateHabitRequest{
				TargetDays: []string{"Monday"},
			},
			wantErr: true,
		},
		{
			name: "name too long",
			req: CreateHabitRequest{
				Name:       strings.Repeat("x", 256),
				TargetDays: []string{"Monday"},
			},
			wantErr: true,
		},
		{
			name: "empty target days",
			req: CreateHabitRequest{
				Name:       "Meditate",
				TargetDays: []string{},
			},
			wantErr: true,
		},
		{
			name: "nil target days",
			req: CreateHabitRequest{
				Name: "Meditate",
			},
			wantErr: true,
		},
		{
			name: "unknown weekday name",
			req: CreateHabitRequest{
				Name:       "Meditate",
				TargetDays: []string{"Funday"},
			},
			wantErr: true,
		},
		{
			name: "lowercase weekday rejected",
			req: CreateHabitRequest{
				Name:       "Meditate",
				TargetDays: []string{"monday"},
			},
			wantErr: true,
		},
		{
			name: "one bad day among good ones",
			req: CreateHabitRequest{
				Name:       "Meditate",
				TargetDays: []string{"Monday", "Someday"},
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateHabitRequestValidation(t *testing.T) {
	validate := validator.New()
	name := "New name"
	longName := strings.Repeat("x", 256)

	tests := []struct {
		name    string
		req     UpdateHabitRequest
		wantErr bool
	}{
		{
			name: "all fields omitted",
			req:  UpdateHabitRequest{},
		},
		{
			name: "name only",
			req:  UpdateHabitRequest{Name: &name},
		},
		{
			name: "target days only",
			req:  UpdateHabitRequest{TargetDays: []string{"Tuesday", "Thursday"}},
		},
		{
			name:    "name too long",
			req:     UpdateHabitRequest{Name: &longName},
			wantErr: true,
		},
		{
			name:    "unknown weekday name",
			req:     UpdateHabitRequest{TargetDays: []string{"Caturday"}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

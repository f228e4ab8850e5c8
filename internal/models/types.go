package models

import (
	"time"
)

type RunStatus string

const (
	RunStatusSolved RunStatus = "solved"
	RunStatusFailed RunStatus = "failed"
)

// Input message

type SolveRequest struct {
	RequestID string `json:"request_id,omitempty" jsonschema:"optional identifier echoed back with the answer"`
	Day       int    `json:"day" jsonschema:"puzzle day, 1 to 25"`
	Part      int    `json:"part" jsonschema:"puzzle part, 1 or 2"`
	Input     string `json:"input" jsonschema:"raw puzzle input text"`
}

type SolveResult struct {
	RequestID string        `json:"request_id,omitempty"`
	Day       int           `json:"day"`
	Part      int           `json:"part"`
	Answer    string        `json:"answer"`
	Cached    bool          `json:"cached"`
	Duration  time.Duration `json:"duration_ns"`
}

// Output message published by the stream worker
type SolveReply struct {
	SolveResult
	Error string `json:"error,omitempty"`
}

// One recorded solve attempt
type Run struct {
	ID        int64         `json:"id"`
	Day       int           `json:"day"`
	Part      int           `json:"part"`
	InputHash string        `json:"input_hash"`
	Answer    string        `json:"answer,omitempty"`
	Status    RunStatus     `json:"status"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration_ns"`
	CreatedAt time.Time     `json:"created_at"`
}

type DayInfo struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Examples int    `json:"examples"`
}

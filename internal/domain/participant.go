package domain

import "time"

// Participant is one campaign entrant. The pair (name, phone) identifies at
// most one participant; ParticipantID is the opaque handle everything else
// links against.
type Participant struct {
	ParticipantID string    `json:"id" dynamodbav:"participant_id"`
	Name          string    `json:"name" dynamodbav:"name"`
	Phone         string    `json:"phone" dynamodbav:"phone"`
	Number        *int      `json:"number,omitempty" dynamodbav:"number"`
	PrizeMoney    *int      `json:"priceMoney,omitempty" dynamodbav:"prize_money"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated" dynamodbav:"updated_at"`
}

type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type SubmitNumberRequest struct {
	Number int `json:"number"`
}

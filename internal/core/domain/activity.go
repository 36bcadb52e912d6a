package domain

import "time"

// ActivityEvent records a single mutation for the audit trail.
type ActivityEvent struct {
	Entity   string    `json:"entity" bson:"entity"`
	EntityID string    `json:"entity_id" bson:"entity_id"`
	Action   string    `json:"action" bson:"action"`
	ActorID  string    `json:"actor_id" bson:"actor_id"`
	At       time.Time `json:"at" bson:"at"`
}

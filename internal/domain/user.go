package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the sub-document resolved from the auth service's user collection
// when a room's members are expanded. This service never writes users.
type User struct {
	ID    primitive.ObjectID `bson:"_id" json:"uid"`
	Name  string             `bson:"nombre" json:"nombre"`
	Email string             `bson:"email,omitempty" json:"email,omitempty"`
}

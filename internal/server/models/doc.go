// Package models defines the entities held by the in-memory stores: users,
// posts and notifications, together with their closed enumerations.
//
// Cross-entity references are by value. A post copies its author's display
// name at creation time and a notification copies the title or name it talks
// about; later edits to the source entity do not propagate.
package models

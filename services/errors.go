package services

import "errors"

// Sentinel errors shared by the services. Controllers translate them
// into HTTP statuses, so a service never has to know about gin.

// ErrRoomNotFound is returned when a room id does not resolve to a row.
// Handlers translate it into an HTTP 404 response.
var ErrRoomNotFound = errors.New("sala não encontrada")

// ErrRoomNameNotFound is returned when a room_name_id does not
// reference an existing room name. Handlers translate it into an
// HTTP 404 response.
var ErrRoomNameNotFound = errors.New("nome de sala não encontrado")

// ErrRoomNameTaken is returned when creating a room name whose (trimmed)
// name already exists. Handlers translate it into an HTTP 400 response —
// the API reports duplicates as bad requests, not 409s.
var ErrRoomNameTaken = errors.New("nome de sala já existe")

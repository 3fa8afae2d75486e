// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// prompt-keeper server handlers and the client that reads their responses.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client maps them back onto service errors, so the
// wording here is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated owner addresses
	// rows of a different owner.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgUnknownCollection is returned for a sync path whose collection is
	// not one of prompts, tags, folders or versions.
	MsgUnknownCollection = "unknown collection"

	// MsgIDMismatch is returned when the id in a pushed body differs from
	// the id in the path.
	MsgIDMismatch = "id in body does not match path"

	// MsgStorageUnavailable is returned when the database failed in a way
	// that a later retry may fix.
	MsgStorageUnavailable = "storage temporarily unavailable"
)

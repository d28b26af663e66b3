package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IsNotFound reports whether err is a Firestore "document not found"
// error.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsAlreadyExists reports whether err is a Firestore "document already
// exists" error, returned by Create on an occupied document ID.
func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

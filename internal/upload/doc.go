// Package upload stores client-supplied documents in the upload directory for
// the duration of a single request.
package upload

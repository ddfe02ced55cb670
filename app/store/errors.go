package store

import "github.com/Nayan-navghane/School-application/app/apperr"

func notFound(collection, id string) error {
	return apperr.NotFound(collection, id)
}

func collabErr(op string, cause error) error {
	return apperr.Collaborator(op, cause)
}

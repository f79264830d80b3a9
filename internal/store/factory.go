package store

import (
	"aihub.app/api/common/secret"
	"aihub.app/api/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
	box     *secret.Box
}

func NewStores(queries *sqlc.Queries, box *secret.Box) *Stores {
	return &Stores{queries: queries, box: box}
}

func (s *Stores) Profiles() ProfileStore {
	return newProfileStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) APIKeys() APIKeyStore {
	return newAPIKeyStore(s.queries, s.box)
}

func (s *Stores) Tools() ToolStore {
	return newToolStore(s.queries)
}

func (s *Stores) WordPress() WordPressStore {
	return newWordPressStore(s.queries, s.box)
}

func (s *Stores) Contents() ContentStore {
	return newContentStore(s.queries)
}

func (s *Stores) UsefulLinks() UsefulLinkStore {
	return newUsefulLinkStore(s.queries)
}

func (s *Stores) Activities() ActivityStore {
	return newActivityStore(s.queries)
}

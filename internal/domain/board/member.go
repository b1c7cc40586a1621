package board

import "time"

// member records one user's role on a board.
type member struct {
	userID   UserID
	role     Role
	joinedAt time.Time
}

func (m *member) view() MemberView {
	return MemberView{
		UserID:   m.userID,
		Role:     m.role,
		JoinedAt: m.joinedAt,
	}
}

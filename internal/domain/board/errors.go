package board

import "github.com/jsamuelsen11/flowboard/internal/domain"

// Value validation failures.
var (
	ErrBoardNameEmpty         = domain.Validation("Board.Name.Empty", "name must be provided")
	ErrBoardNameTooLong       = domain.Validation("Board.Name.TooLong", "name must be 100 characters or fewer")
	ErrColumnNameEmpty        = domain.Validation("Column.Name.Empty", "name must be provided")
	ErrColumnNameTooLong      = domain.Validation("Column.Name.TooLong", "name must be 60 characters or fewer")
	ErrCardTitleEmpty         = domain.Validation("Card.Title.Empty", "title must be provided")
	ErrCardTitleTooLong       = domain.Validation("Card.Title.TooLong", "title must be 200 characters or fewer")
	ErrCardDescriptionTooLong = domain.Validation("Card.Description.TooLong", "description must be 5000 characters or fewer")
	ErrOrderIndexNegative     = domain.Validation("OrderIndex.Negative", "order index cannot be negative")
	ErrWipLimitInvalid        = domain.Validation("Column.WipLimit.Invalid", "WIP limit must be greater than zero")
	ErrRoleInvalid            = domain.Validation("Board.Member.InvalidRole", "role must be member or owner")
	ErrColumnOrderInvalid     = domain.Validation("Column.Order.Invalid", "new order is out of range")
	ErrCardMoveInvalidOrder   = domain.Validation("Card.Move.InvalidOrder", "target order is out of range")
	ErrSnapshotInvalid        = domain.Validation("Board.Snapshot.Invalid", "stored board violates aggregate invariants")
)

// Structural conflicts.
var (
	ErrColumnNameDuplicate = domain.Conflict("Column.Name.Duplicate", "a column with that name already exists on this board")
	ErrWipLimitViolation   = domain.Conflict("Column.WipLimit.Violation", "column WIP limit would be exceeded")
	ErrMemberAlreadyExists = domain.Conflict("Board.Member.AlreadyExists", "user is already a member of this board")
	ErrLastOwner           = domain.Conflict("Board.Member.LastOwner", "a board must keep at least one owner")
)

// Lookup failures.
var (
	ErrBoardNotFound  = domain.NotFound("Board.NotFound", "board not found")
	ErrColumnNotFound = domain.NotFound("Column.NotFound", "column not found")
	ErrCardNotFound   = domain.NotFound("Card.NotFound", "card not found")
	ErrMemberNotFound = domain.NotFound("Board.Member.NotFound", "user is not a member of this board")
)

// Permission failures.
var (
	ErrOwnerRequired  = domain.Forbidden("Board.Permission.OwnerRequired", "only board owners may perform this action")
	ErrMemberRequired = domain.Forbidden("Board.Permission.MemberRequired", "only board members may perform this action")
)

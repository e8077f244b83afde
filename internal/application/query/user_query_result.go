package query

import "workflowpro-api/internal/application/common"

type UserQueryResult struct {
	Result common.UserResult `json:"result"`
}

// UserSearchEntry is the trimmed directory shape returned by user search.
type UserSearchEntry struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

package dto

// BootstrapResponse is the single combined fetch that initializes a client:
// every user plus every task, tasks in creation order.
type BootstrapResponse struct {
	Users []UserResponse `json:"users"`
	Tasks []TaskResponse `json:"tasks"`
}

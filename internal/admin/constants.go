package admin

// Log Messages
const (
	LogMsgRoleAdded      = "Admin role registered"
	LogMsgRoleRemoved    = "Admin role unregistered"
	LogMsgActionDenied   = "Admin action denied"
	LogMsgRegistryDenied = "Admin role registry change denied"
)

// Error Messages
const (
	ErrMsgListFailed   = "failed to list admin roles: %w"
	ErrMsgAddFailed    = "failed to register admin role %s: %w"
	ErrMsgRemoveFailed = "failed to unregister admin role %s: %w"
	ErrMsgCheckFailed  = "failed to check admin roles: %w"
)

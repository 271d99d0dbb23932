package chain

import "errors"

var (
	ErrNoSigner           = errors.New("no signer connected")
	ErrInvalidRole        = errors.New("invalid role key")
	ErrInvalidAddress     = errors.New("valid user address is required")
	ErrRoleAlreadyGranted = errors.New("user already has this role")
	ErrRoleNotGranted     = errors.New("user does not have this role")
	ErrNotAdmin           = errors.New("signer does not have admin privileges")
	ErrBatchNotFound      = errors.New("batch not found")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrTxReverted         = errors.New("transaction reverted")
)

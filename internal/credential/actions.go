package credential

// Activation handle actions. The hosting app dispatches on these when the
// user picks an entry.
const (
	ActionCreatePasskey  = "provider.fido2.CREATE_PASSKEY"
	ActionGetPasskey     = "provider.fido2.GET_PASSKEY"
	ActionCreatePassword = "provider.password.CREATE_PASSWORD"
	ActionGetPassword    = "provider.password.GET_PASSWORD"
	ActionUnlockAccount  = "provider.credential.UNLOCK_ACCOUNT"
	ActionOpenVault      = "provider.credential.OPEN_VAULT"
)

const (
	unlockActionTitle    = "Unlock"
	openVaultActionTitle = "Open vault"
	noUsernameLabel      = "No username"

	passkeyDescriptionFormat  = "Your passkey will be saved to your vault for %s"
	passwordDescriptionFormat = "Your password will be saved to your vault for %s"
)

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-provider/models"
)

const activeUserKey = "active_user_id"

var accountColumns = []string{
	"user_id", "email", "name",
	"kdf_type", "kdf_iterations", "kdf_memory_kib", "kdf_parallelism",
	"is_logged_in",
}

var cipherColumns = []string{
	"id", "user_id", "type", "name", "data", "has_fido2", "deleted", "revision_date",
}

func selectAccountsQuery() (string, []any, error) {
	return sq.Select(accountColumns...).
		From("accounts").
		OrderBy("created_at", "user_id").
		ToSql()
}

func selectAppStateQuery(key string) (string, []any, error) {
	return sq.Select("value").From("app_state").Where(sq.Eq{"key": key}).ToSql()
}

func upsertAppStateQuery(key, value string) (string, []any, error) {
	return sq.Insert("app_state").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func upsertAccountQuery(a StoredAccount) (string, []any, error) {
	var privateKey any
	if a.EncryptedPrivateKey != "" {
		privateKey = a.EncryptedPrivateKey
	}
	return sq.Insert("accounts").
		Columns(
			"user_id", "email", "name",
			"kdf_type", "kdf_iterations", "kdf_memory_kib", "kdf_parallelism",
			"encrypted_user_key", "encrypted_private_key", "is_logged_in",
		).
		Values(
			a.Account.UserID, a.Account.Email, a.Account.Name,
			int(a.Account.Kdf.Type), a.Account.Kdf.Iterations, a.Account.Kdf.MemoryKiB, a.Account.Kdf.Parallelism,
			a.EncryptedUserKey, privateKey, a.Account.IsLoggedIn,
		).
		Suffix(`ON CONFLICT(user_id) DO UPDATE SET
			email = excluded.email,
			name = excluded.name,
			kdf_type = excluded.kdf_type,
			kdf_iterations = excluded.kdf_iterations,
			kdf_memory_kib = excluded.kdf_memory_kib,
			kdf_parallelism = excluded.kdf_parallelism,
			encrypted_user_key = excluded.encrypted_user_key,
			encrypted_private_key = excluded.encrypted_private_key,
			is_logged_in = excluded.is_logged_in`).
		ToSql()
}

func updateLoggedInQuery(userID string, loggedIn bool) (string, []any, error) {
	return sq.Update("accounts").
		Set("is_logged_in", loggedIn).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func selectAccountColumnQuery(column, userID string) (string, []any, error) {
	return sq.Select(column).From("accounts").Where(sq.Eq{"user_id": userID}).ToSql()
}

func selectVaultStateColumnQuery(column, userID string) (string, []any, error) {
	return sq.Select(column).From("account_vault_state").Where(sq.Eq{"user_id": userID}).ToSql()
}

func upsertVaultStateColumnQuery(column, userID string, value any) (string, []any, error) {
	return sq.Insert("account_vault_state").
		Columns("user_id", column).
		Values(userID, value).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET " + column + " = excluded." + column).
		ToSql()
}

func selectOrganizationKeysQuery(userID string) (string, []any, error) {
	return sq.Select("organization_id", "encrypted_key").
		From("organization_keys").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("organization_id").
		ToSql()
}

func deleteOrganizationKeysQuery(userID string) (string, []any, error) {
	return sq.Delete("organization_keys").Where(sq.Eq{"user_id": userID}).ToSql()
}

func insertOrganizationKeysQuery(userID string, keys map[string]string, orgIDs []string) (string, []any, error) {
	q := sq.Insert("organization_keys").Columns("user_id", "organization_id", "encrypted_key")
	for _, id := range orgIDs {
		q = q.Values(userID, id, keys[id])
	}
	return q.ToSql()
}

func selectSettingQuery(column, userID string) (string, []any, error) {
	return sq.Select(column).From("account_settings").Where(sq.Eq{"user_id": userID}).ToSql()
}

func upsertSettingQuery(column, userID, value string) (string, []any, error) {
	return sq.Insert("account_settings").
		Columns("user_id", column).
		Values(userID, value).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET " + column + " = excluded." + column).
		ToSql()
}

func upsertCipherQuery(c models.Cipher) (string, []any, error) {
	return sq.Insert("ciphers").
		Columns(cipherColumns...).
		Values(c.ID, c.UserID, int(c.Type), c.Name, c.Data, c.HasFido2, c.Deleted, c.RevisionDate.UTC()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			name = excluded.name,
			data = excluded.data,
			has_fido2 = excluded.has_fido2,
			deleted = excluded.deleted,
			revision_date = excluded.revision_date
			WHERE ciphers.user_id = excluded.user_id`).
		ToSql()
}

func selectCipherQuery(userID, cipherID string) (string, []any, error) {
	return sq.Select(cipherColumns...).
		From("ciphers").
		Where(sq.Eq{"id": cipherID, "user_id": userID}).
		ToSql()
}

func listCiphersQuery(userID string, filter CipherFilter) (string, []any, error) {
	q := sq.Select(cipherColumns...).
		From("ciphers").
		Where(sq.Eq{"user_id": userID})

	if filter.Type != nil {
		q = q.Where(sq.Eq{"type": int(*filter.Type)})
	}
	if filter.HasFido2 != nil {
		q = q.Where(sq.Eq{"has_fido2": *filter.HasFido2})
	}
	if !filter.IncludeDeleted {
		q = q.Where(sq.Eq{"deleted": false})
	}

	return q.OrderBy("revision_date DESC", "id").ToSql()
}

func deleteCipherQuery(userID, cipherID string) (string, []any, error) {
	return sq.Delete("ciphers").Where(sq.Eq{"id": cipherID, "user_id": userID}).ToSql()
}

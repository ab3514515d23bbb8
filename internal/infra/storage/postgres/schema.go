package postgres

// schema is applied on every Connect.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		signature  TEXT PRIMARY KEY,
		slot       BIGINT NOT NULL,
		block_time BIGINT,
		accounts   TEXT[] NOT NULL DEFAULT '{}',
		program_id TEXT,
		data       JSONB,
		success    BOOLEAN NOT NULL,
		fee        BIGINT NOT NULL,
		timestamp  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		address    TEXT PRIMARY KEY,
		lamports   BIGINT NOT NULL,
		owner      TEXT NOT NULL,
		executable BOOLEAN NOT NULL,
		rent_epoch NUMERIC(20, 0) NOT NULL,
		data       BYTEA,
		slot       BIGINT NOT NULL,
		timestamp  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_slot ON transactions (slot)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_timestamp ON transactions (timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_owner ON accounts (owner)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_slot ON accounts (slot)`,
}

const upsertTransaction = `
INSERT INTO transactions (signature, slot, block_time, accounts, program_id, data, success, fee, timestamp)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (signature) DO UPDATE SET
	slot = EXCLUDED.slot,
	block_time = EXCLUDED.block_time,
	accounts = EXCLUDED.accounts,
	program_id = EXCLUDED.program_id,
	data = EXCLUDED.data,
	success = EXCLUDED.success,
	fee = EXCLUDED.fee,
	timestamp = EXCLUDED.timestamp`

const upsertAccount = `
INSERT INTO accounts (address, lamports, owner, executable, rent_epoch, data, slot, timestamp)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (address) DO UPDATE SET
	lamports = EXCLUDED.lamports,
	owner = EXCLUDED.owner,
	executable = EXCLUDED.executable,
	rent_epoch = EXCLUDED.rent_epoch,
	data = EXCLUDED.data,
	slot = EXCLUDED.slot,
	timestamp = EXCLUDED.timestamp`

const (
	selectTransactions = `SELECT signature, slot, block_time, accounts, program_id, data, success, fee, timestamp FROM transactions`
	selectAccounts     = `SELECT address, lamports, owner, executable, rent_epoch::text, data, slot, timestamp FROM accounts`
)

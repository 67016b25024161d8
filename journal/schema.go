// journal/schema.go
package journal

// Schema is applied on every open; each statement is create-if-absent.
// Columns carry no NOT NULL constraints: validation happens before insert.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	ref TEXT,
	date TEXT,
	time TEXT,
	instrument TEXT,
	session TEXT,
	account_size REAL,
	setup_name TEXT,
	entry_price REAL,
	exit_price REAL,
	stop_loss REAL,
	position_size REAL,
	direction TEXT,
	pnl_net REAL,
	commission REAL,
	asset_class TEXT,
	multiplier REAL DEFAULT 1,
	context TEXT,
	bias TEXT,
	duration TEXT,
	mental_state_pre TEXT,
	mental_state_during TEXT,
	execution_quality TEXT,
	distractions TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_trades_ref ON trades(ref);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT
);
`

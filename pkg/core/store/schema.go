package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS financial_inputs (
    id           TEXT PRIMARY KEY,
    name         TEXT NOT NULL,
    inputs_json  TEXT NOT NULL,
    created_at   TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_financial_inputs_created ON financial_inputs(created_at);
`

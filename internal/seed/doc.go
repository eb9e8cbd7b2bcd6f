// Package seed loads declarative reference data (item, structure, bot,
// building and recipe types) from YAML files into the store at startup.
//
// Each file is applied at most once per content version. A file's SHA-256
// fingerprint is recorded in the seed_application ledger in the same
// transaction as the entities it created, so a crashed or failed file leaves
// nothing behind and is retried from the start on the next run. Entities are
// keyed by name: an existing entity is never overwritten and never gains
// child rows. Concurrent runs against one database are arbitrated only by the
// unique indexes on entity names and on the ledger fingerprint.
package seed

// Package ledger is the read side of the cost ledger. It folds a snapshot of
// categories, articles and transactions into spend totals, invoice splits and
// date rollups. Every function here is pure: callers load a Snapshot from the
// store and the package never touches the database.
//
// Amounts are accumulated as shopspring decimals and only rounded to cents in
// the Report types that are sent to clients.
package ledger

// Package store owns the canonical ledger: it loads the single JSON document
// on startup, applies mutations as copy-on-write snapshot swaps and persists
// the new snapshot after every mutation.
package store

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"rishvinreddy/smarty-budget/internal/fileutils"
	"rishvinreddy/smarty-budget/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LedgerStore holds the single in-memory ledger and its backing file. All
// mutations are synchronous: one mutation in, one new immutable snapshot out,
// then a persist. Persistence is fire-and-forget; a failed write is logged
// and the in-memory mutation stands, so the user is never blocked by a full
// disk. The next successful persist catches up.
type LedgerStore struct {
	path   string
	ledger models.Ledger
}

// Open loads the ledger document from path. A missing or unparsable file
// falls back to the seed ledger; unparsable is treated as absent, never as a
// crash.
func Open(path string) *LedgerStore {
	s := &LedgerStore{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("Could not read ledger file, starting from seed")
		}
		s.ledger = SeedLedger()
		return s
	}

	var ledger models.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		log.WithError(err).WithField("file", path).Warn("Ledger file is unparsable, starting from seed")
		s.ledger = SeedLedger()
		return s
	}

	s.ledger = ledger
	log.WithFields(logrus.Fields{
		"file":         path,
		"transactions": len(ledger.Transactions),
	}).Debug("Loaded ledger")
	return s
}

// Ledger returns a snapshot of the current ledger. Callers may hold it
// across mutations; it never changes under them.
func (s *LedgerStore) Ledger() models.Ledger {
	return s.ledger.Clone()
}

// Path returns the backing file path.
func (s *LedgerStore) Path() string {
	return s.path
}

// UpdateItem replaces the bucket entry whose id matches item.ID. No-op when
// the id is absent; other buckets are never touched.
func (s *LedgerStore) UpdateItem(bucket models.CategoryType, item models.BudgetItem) {
	next := s.ledger.Clone()
	items := next.Bucket(bucket)
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
		}
	}
	next.SetBucket(bucket, items)
	s.commit(next)
}

// AddItem appends a new budget line with a freshly minted id. Callers reject
// empty names before calling; the store performs no validation.
func (s *LedgerStore) AddItem(bucket models.CategoryType, name string, planned decimal.Decimal) models.BudgetItem {
	item := models.NewBudgetItem(name, planned)
	next := s.ledger.Clone()
	next.SetBucket(bucket, append(next.Bucket(bucket), item))
	s.commit(next)
	return item
}

// RemoveItem filters the bucket by id. No-op when absent. Transactions that
// referenced the removed item are left as-is; they simply stop resolving to
// a name and stop contributing to any actual.
func (s *LedgerStore) RemoveItem(bucket models.CategoryType, id string) {
	next := s.ledger.Clone()
	items := next.Bucket(bucket)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	next.SetBucket(bucket, kept)
	s.commit(next)
}

// SetDisplayCurrency updates the presentation currency. Stored amounts stay
// in the base unit; no amount is rescaled.
func (s *LedgerStore) SetDisplayCurrency(code string) {
	next := s.ledger.Clone()
	next.DisplayCurrency = strings.ToUpper(code)
	s.commit(next)
}

// AddTransaction mints an id and prepends the transaction to the log.
func (s *LedgerStore) AddTransaction(date, description string, amount decimal.Decimal, ref models.CategoryRef, location string, items []models.TransactionItem) models.Transaction {
	tx := models.NewTransaction(date, description, amount, ref, location, items)
	next := s.ledger.Clone()
	next.Transactions = append([]models.Transaction{tx}, next.Transactions...)
	s.commit(next)
	return tx
}

// RemoveTransaction filters the log by id. No-op when absent.
func (s *LedgerStore) RemoveTransaction(id string) {
	next := s.ledger.Clone()
	kept := next.Transactions[:0]
	for _, tx := range next.Transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	next.Transactions = kept
	s.commit(next)
}

// ReplaceAll substitutes the whole ledger. Callers that accept outside
// documents (import, AI plans) validate before calling; the store itself
// performs no structural checks.
func (s *LedgerStore) ReplaceAll(ledger models.Ledger) {
	s.commit(ledger.Clone())
}

// ResetToDefault discards the persisted document and restores the seed.
func (s *LedgerStore) ResetToDefault() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Could not remove ledger file during reset")
	}
	s.commit(SeedLedger())
}

// commit swaps in the new snapshot and persists it. The swap happens first:
// a subsequent read by the same client always observes the mutation, whether
// or not the persist succeeded.
func (s *LedgerStore) commit(next models.Ledger) {
	s.ledger = next
	if err := s.persist(); err != nil {
		log.WithError(err).WithField("file", s.path).Error("Failed to persist ledger; in-memory state stands")
	}
}

func (s *LedgerStore) persist() error {
	data, err := json.MarshalIndent(s.ledger, "", "  ")
	if err != nil {
		return err
	}
	return fileutils.WriteFile(s.path, data)
}

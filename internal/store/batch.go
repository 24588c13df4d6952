package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthyrecipehub/backend/internal/apperr"
)

type opKind int

const (
	opUpdate opKind = iota
	opDelete
)

type stagedOp struct {
	kind   opKind
	model  interface{}
	id     uuid.UUID
	fields map[string]interface{}
}

// Batch accumulates writes that become durable only when Commit succeeds.
// Staging never touches the database.
type Batch struct {
	db  *gorm.DB
	ops []stagedOp
}

func (s *Store) NewBatch() *Batch {
	return &Batch{db: s.db}
}

// Update stages a field update against the record of the given model type.
func (b *Batch) Update(model interface{}, id uuid.UUID, fields map[string]interface{}) {
	b.ops = append(b.ops, stagedOp{kind: opUpdate, model: model, id: id, fields: fields})
}

// Delete stages removal of the record of the given model type.
func (b *Batch) Delete(model interface{}, id uuid.UUID) {
	b.ops = append(b.ops, stagedOp{kind: opDelete, model: model, id: id})
}

// Len reports how many writes are staged.
func (b *Batch) Len() int {
	return len(b.ops)
}

// Commit applies every staged write in one transaction. Either all writes
// take effect or none do.
func (b *Batch) Commit(ctx context.Context) error {
	if len(b.ops) == 0 {
		return nil
	}

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range b.ops {
			switch op.kind {
			case opUpdate:
				if err := tx.Model(op.model).Where("id = ?", op.id).Updates(op.fields).Error; err != nil {
					return err
				}
			case opDelete:
				if err := tx.Where("id = ?", op.id).Delete(op.model).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap(apperr.Internal, "batch commit failed", err)
	}
	return nil
}

// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arjun/codequest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// SaveID applies equality check predicate on the "save_id" field. It's identical to SaveIDEQ.
func SaveID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSaveID, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// SaveIDEQ applies the EQ predicate on the "save_id" field.
func SaveIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldSaveID, v))
}

// SaveIDNEQ applies the NEQ predicate on the "save_id" field.
func SaveIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldSaveID, v))
}

// SaveIDIn applies the In predicate on the "save_id" field.
func SaveIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldSaveID, vs...))
}

// SaveIDNotIn applies the NotIn predicate on the "save_id" field.
func SaveIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldSaveID, vs...))
}

// SaveIDGT applies the GT predicate on the "save_id" field.
func SaveIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldSaveID, v))
}

// SaveIDGTE applies the GTE predicate on the "save_id" field.
func SaveIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldSaveID, v))
}

// SaveIDLT applies the LT predicate on the "save_id" field.
func SaveIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldSaveID, v))
}

// SaveIDLTE applies the LTE predicate on the "save_id" field.
func SaveIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldSaveID, v))
}

// SaveIDContains applies the Contains predicate on the "save_id" field.
func SaveIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldSaveID, v))
}

// SaveIDHasPrefix applies the HasPrefix predicate on the "save_id" field.
func SaveIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldSaveID, v))
}

// SaveIDHasSuffix applies the HasSuffix predicate on the "save_id" field.
func SaveIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldSaveID, v))
}

// SaveIDEqualFold applies the EqualFold predicate on the "save_id" field.
func SaveIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldSaveID, v))
}

// SaveIDContainsFold applies the ContainsFold predicate on the "save_id" field.
func SaveIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldSaveID, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}

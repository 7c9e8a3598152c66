// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alecrj/atelier/ent/artwork"
	"github.com/alecrj/atelier/ent/predicate"
)

// ArtworkUpdate is the builder for updating Artwork entities.
type ArtworkUpdate struct {
	config
	hooks    []Hook
	mutation *ArtworkMutation
}

// Where appends a list predicates to the ArtworkUpdate builder.
func (_u *ArtworkUpdate) Where(ps ...predicate.Artwork) *ArtworkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ArtworkUpdate) SetTitle(v string) *ArtworkUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtworkUpdate) SetNillableTitle(v *string) *ArtworkUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ArtworkUpdate) SetLessonID(v string) *ArtworkUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ArtworkUpdate) SetNillableLessonID(v *string) *ArtworkUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// ClearLessonID clears the value of the "lesson_id" field.
func (_u *ArtworkUpdate) ClearLessonID() *ArtworkUpdate {
	_u.mutation.ClearLessonID()
	return _u
}

// SetPath sets the "path" field.
func (_u *ArtworkUpdate) SetPath(v string) *ArtworkUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ArtworkUpdate) SetNillablePath(v *string) *ArtworkUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// Mutation returns the ArtworkMutation object of the builder.
func (_u *ArtworkUpdate) Mutation() *ArtworkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtworkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtworkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtworkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtworkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtworkUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := artwork.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Artwork.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := artwork.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Artwork.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtworkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artwork.Table, artwork.Columns, sqlgraph.NewFieldSpec(artwork.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artwork.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(artwork.FieldLessonID, field.TypeString, value)
	}
	if _u.mutation.LessonIDCleared() {
		_spec.ClearField(artwork.FieldLessonID, field.TypeString)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(artwork.FieldPath, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artwork.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtworkUpdateOne is the builder for updating a single Artwork entity.
type ArtworkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtworkMutation
}

// SetTitle sets the "title" field.
func (_u *ArtworkUpdateOne) SetTitle(v string) *ArtworkUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ArtworkUpdateOne) SetNillableTitle(v *string) *ArtworkUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *ArtworkUpdateOne) SetLessonID(v string) *ArtworkUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *ArtworkUpdateOne) SetNillableLessonID(v *string) *ArtworkUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// ClearLessonID clears the value of the "lesson_id" field.
func (_u *ArtworkUpdateOne) ClearLessonID() *ArtworkUpdateOne {
	_u.mutation.ClearLessonID()
	return _u
}

// SetPath sets the "path" field.
func (_u *ArtworkUpdateOne) SetPath(v string) *ArtworkUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *ArtworkUpdateOne) SetNillablePath(v *string) *ArtworkUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// Mutation returns the ArtworkMutation object of the builder.
func (_u *ArtworkUpdateOne) Mutation() *ArtworkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtworkUpdate builder.
func (_u *ArtworkUpdateOne) Where(ps ...predicate.Artwork) *ArtworkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtworkUpdateOne) Select(field string, fields ...string) *ArtworkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artwork entity.
func (_u *ArtworkUpdateOne) Save(ctx context.Context) (*Artwork, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtworkUpdateOne) SaveX(ctx context.Context) *Artwork {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtworkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtworkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArtworkUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := artwork.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Artwork.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Path(); ok {
		if err := artwork.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Artwork.path": %w`, err)}
		}
	}
	return nil
}

func (_u *ArtworkUpdateOne) sqlSave(ctx context.Context) (_node *Artwork, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(artwork.Table, artwork.Columns, sqlgraph.NewFieldSpec(artwork.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artwork.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artwork.FieldID)
		for _, f := range fields {
			if !artwork.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artwork.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(artwork.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(artwork.FieldLessonID, field.TypeString, value)
	}
	if _u.mutation.LessonIDCleared() {
		_spec.ClearField(artwork.FieldLessonID, field.TypeString)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(artwork.FieldPath, field.TypeString, value)
	}
	_node = &Artwork{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artwork.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

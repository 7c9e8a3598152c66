// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/alecrj/atelier/ent/artwork"
	"github.com/google/uuid"
)

// ArtworkCreate is the builder for creating a Artwork entity.
type ArtworkCreate struct {
	config
	mutation *ArtworkMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *ArtworkCreate) SetTitle(v string) *ArtworkCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLessonID sets the "lesson_id" field.
func (_c *ArtworkCreate) SetLessonID(v string) *ArtworkCreate {
	_c.mutation.SetLessonID(v)
	return _c
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_c *ArtworkCreate) SetNillableLessonID(v *string) *ArtworkCreate {
	if v != nil {
		_c.SetLessonID(*v)
	}
	return _c
}

// SetPath sets the "path" field.
func (_c *ArtworkCreate) SetPath(v string) *ArtworkCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *ArtworkCreate) SetImportedAt(v time.Time) *ArtworkCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *ArtworkCreate) SetNillableImportedAt(v *time.Time) *ArtworkCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtworkCreate) SetID(v uuid.UUID) *ArtworkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ArtworkCreate) SetNillableID(v *uuid.UUID) *ArtworkCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ArtworkMutation object of the builder.
func (_c *ArtworkCreate) Mutation() *ArtworkMutation {
	return _c.mutation
}

// Save creates the Artwork in the database.
func (_c *ArtworkCreate) Save(ctx context.Context) (*Artwork, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtworkCreate) SaveX(ctx context.Context) *Artwork {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtworkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtworkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtworkCreate) defaults() {
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := artwork.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := artwork.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtworkCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Artwork.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := artwork.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Artwork.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "Artwork.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := artwork.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "Artwork.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "Artwork.imported_at"`)}
	}
	return nil
}

func (_c *ArtworkCreate) sqlSave(ctx context.Context) (*Artwork, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtworkCreate) createSpec() (*Artwork, *sqlgraph.CreateSpec) {
	var (
		_node = &Artwork{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artwork.Table, sqlgraph.NewFieldSpec(artwork.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(artwork.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.LessonID(); ok {
		_spec.SetField(artwork.FieldLessonID, field.TypeString, value)
		_node.LessonID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(artwork.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(artwork.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// ArtworkCreateBulk is the builder for creating many Artwork entities in bulk.
type ArtworkCreateBulk struct {
	config
	err      error
	builders []*ArtworkCreate
}

// Save creates the Artwork entities in the database.
func (_c *ArtworkCreateBulk) Save(ctx context.Context) ([]*Artwork, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artwork, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtworkMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ArtworkCreateBulk) SaveX(ctx context.Context) []*Artwork {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtworkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtworkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forkful/mise/internal/collection"
)

// SaveRecipe writes a normalized recipe transactionally, replacing any
// previously stored version wholesale.
//
// Delete-then-insert inside one transaction is deliberate: the merge layer
// already resolved the authoritative state in memory, so partial row
// updates would only reintroduce the splicing problems the resolver
// exists to avoid. ON DELETE CASCADE clears sections and items with the
// recipe row.
//
// The caller must persist only normalized recipes; the UNIQUE constraints
// on (recipe_id, kind, ord) and (section_id, position) reject anything
// with duplicate positions.
func (s *Store) SaveRecipe(ctx context.Context, r collection.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save recipe: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, r.ID); err != nil {
		return fmt.Errorf("save recipe: clear previous: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO recipes (id, name) VALUES (?, ?)
	`, r.ID, r.Name); err != nil {
		return fmt.Errorf("save recipe: insert recipe: %w", err)
	}

	if err := insertSections(ctx, tx, r.ID, collection.KindIngredients, r.IngredientSections); err != nil {
		return fmt.Errorf("save recipe: %w", err)
	}
	if err := insertSections(ctx, tx, r.ID, collection.KindInstructions, r.InstructionSections); err != nil {
		return fmt.Errorf("save recipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save recipe: commit: %w", err)
	}
	return nil
}

// DeleteRecipe removes a recipe and, via cascade, its sections and items.
// Deleting an unknown id is a no-op.
func (s *Store) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// insertSections writes one kind's section list with its items.
func insertSections(ctx context.Context, tx *sql.Tx, recipeID string, kind collection.ListKind, sections []collection.Section) error {
	for _, sec := range sections {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO sections (id, recipe_id, kind, name, ord)
			VALUES (?, ?, ?, ?, ?)
		`, sec.ID, recipeID, string(kind), sec.Name, sec.Order); err != nil {
			return fmt.Errorf("insert section %s: %w", sec.ID, err)
		}

		for _, it := range sec.Items {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO items (id, section_id, position, name, amount, content)
				VALUES (?, ?, ?, ?, ?, ?)
			`, it.ID, sec.ID, it.Position, it.Name, it.Amount, it.Content); err != nil {
				return fmt.Errorf("insert item %s: %w", it.ID, err)
			}
		}
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forkful/mise/internal/collection"
)

// ErrNotFound is returned when a recipe id does not exist in the store.
var ErrNotFound = errors.New("recipe not found")

// LoadRecipe reads a recipe back in canonical order: sections by
// (kind, ord), items by position. The flat views are synthesized from the
// sectioned data, since only sectioned data is persisted.
//
// Returns ErrNotFound if the id is unknown.
func (s *Store) LoadRecipe(ctx context.Context, recipeID string) (collection.Recipe, error) {
	var r collection.Recipe

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name FROM recipes WHERE id = ?
	`, recipeID).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return r, fmt.Errorf("load recipe %s: %w", recipeID, ErrNotFound)
	}
	if err != nil {
		return r, fmt.Errorf("load recipe %s: %w", recipeID, err)
	}

	r.IngredientSections, err = s.readSections(ctx, recipeID, collection.KindIngredients)
	if err != nil {
		return r, fmt.Errorf("load recipe %s: %w", recipeID, err)
	}
	r.InstructionSections, err = s.readSections(ctx, recipeID, collection.KindInstructions)
	if err != nil {
		return r, fmt.Errorf("load recipe %s: %w", recipeID, err)
	}

	r.Ingredients = collection.Flatten(r.IngredientSections)
	r.Instructions = collection.Flatten(r.InstructionSections)
	return r, nil
}

// ListRecipes returns the (id, name) of every stored recipe, ordered by
// name then id for stable output.
func (s *Store) ListRecipes(ctx context.Context) ([]collection.Recipe, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name FROM recipes ORDER BY name ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []collection.Recipe{}
	for rows.Next() {
		var r collection.Recipe
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("list recipes: scan: %w", err)
		}
		recipes = append(recipes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list recipes: iterate: %w", err)
	}
	return recipes, nil
}

// readSections returns one kind's sections with their items, fully ordered.
func (s *Store) readSections(ctx context.Context, recipeID string, kind collection.ListKind) ([]collection.Section, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, ord FROM sections
		WHERE recipe_id = ? AND kind = ?
		ORDER BY ord ASC, id ASC
	`, recipeID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	var sections []collection.Section
	for rows.Next() {
		var sec collection.Section
		if err := rows.Scan(&sec.ID, &sec.Name, &sec.Order); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	for i := range sections {
		items, err := s.readItems(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		sections[i].Items = items
	}
	return sections, nil
}

// readItems returns one section's items in position order.
func (s *Store) readItems(ctx context.Context, sectionID string) ([]collection.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, name, amount, content FROM items
		WHERE section_id = ?
		ORDER BY position ASC, id ASC
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []collection.Item{}
	for rows.Next() {
		var it collection.Item
		if err := rows.Scan(&it.ID, &it.Position, &it.Name, &it.Amount, &it.Content); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.SectionID = sectionID
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

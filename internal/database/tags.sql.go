package database

import (
	"context"
)

const createTag = `-- name: CreateTag :one
INSERT INTO tags (name, color, slug)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
RETURNING id
`

type CreateTagParams struct {
	Name  string
	Color string
	Slug  string
}

func (q *Queries) CreateTag(ctx context.Context, arg CreateTagParams) (int64, error) {
	row := q.db.QueryRow(ctx, createTag, arg.Name, arg.Color, arg.Slug)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const getTagsByIDs = `-- name: GetTagsByIDs :many
SELECT id, name, color, slug
FROM tags
WHERE id = ANY($1::BIGINT[])
ORDER BY id
`

func (q *Queries) GetTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error) {
	rows, err := q.db.Query(ctx, getTagsByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Color, &i.Slug); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getRecipeTags = `-- name: GetRecipeTags :many
SELECT t.id, t.name, t.color, t.slug
FROM tags t
JOIN recipe_tags rt ON rt.tag_id = t.id
WHERE rt.recipe_id = $1
ORDER BY t.id
`

func (q *Queries) GetRecipeTags(ctx context.Context, recipeID int64) ([]Tag, error) {
	rows, err := q.db.Query(ctx, getRecipeTags, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tag
	for rows.Next() {
		var i Tag
		if err := rows.Scan(&i.ID, &i.Name, &i.Color, &i.Slug); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

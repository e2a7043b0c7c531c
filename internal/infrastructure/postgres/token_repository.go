package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/storefront-api/internal/domain/entity"
	"github.com/tu-usuario/storefront-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementación del puerto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	q Querier
}

// NewTokenRepository construye el adaptador de persistencia para tokens.
func NewTokenRepository(q Querier) *TokenRepo {
	return &TokenRepo{q: q}
}

// Create registra un token recién emitido.
func (r *TokenRepo) Create(token *entity.AccessToken) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO access_tokens (id, user_id, name, created_at, last_used_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.UserID, token.Name, token.CreatedAt, token.LastUsedAt,
	)
	if err != nil {
		return fmt.Errorf("insert access token: %w", err)
	}
	return nil
}

// GetByID devuelve el token vivo o (nil, nil) si fue revocado.
func (r *TokenRepo) GetByID(id string) (*entity.AccessToken, error) {
	var t entity.AccessToken
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, name, created_at, last_used_at
		 FROM access_tokens WHERE id = $1`, id,
	).Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt, &t.LastUsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get access token: %w", err)
	}
	return &t, nil
}

// Touch actualiza last_used_at.
func (r *TokenRepo) Touch(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE access_tokens SET last_used_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch access token: %w", err)
	}
	return nil
}

// Delete revoca el token.
func (r *TokenRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM access_tokens WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete access token: %w", err)
	}
	return nil
}

package users

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/mock/gomock"

	apiError "github.com/mign0n/foodgram-project/internal/api/error"
	"github.com/mign0n/foodgram-project/internal/argon2id"
	"github.com/mign0n/foodgram-project/internal/config"
	"github.com/mign0n/foodgram-project/internal/database"
	"github.com/mign0n/foodgram-project/internal/env"
	"github.com/mign0n/foodgram-project/internal/log"
)

func init() {
	HashParams = argon2id.ArgonParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}

const validBody = `{"email":"Cook@Example.com","username":"cook","first_name":"Ann","last_name":"Lee","password":"SecureP@ssw0rd123!"}`

func TestHandleCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *database.MockQuerier)
		wantCode int
		wantErr  apiError.ErrorCode
	}{
		{
			name: "created",
			body: validBody,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, p database.CreateUserParams) (int64, error) {
						if p.Email != "cook@example.com" {
							t.Errorf("email = %q, want normalized", p.Email)
						}
						if p.Role != database.RoleUser {
							t.Errorf("role = %q, want user", p.Role)
						}
						if ok, _ := argon2id.Compare("SecureP@ssw0rd123!", p.PasswordHash); !ok {
							t.Error("stored hash does not match the password")
						}
						return 3, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: validBody,
			setup: func(m *database.MockQuerier) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
			},
			wantCode: http.StatusConflict,
			wantErr:  apiError.EmailConflict,
		},
		{
			name:     "weak password",
			body:     `{"email":"a@b.co","username":"cook","first_name":"A","last_name":"B","password":"password"}`,
			setup:    func(*database.MockQuerier) {},
			wantCode: http.StatusUnprocessableEntity,
			wantErr:  apiError.WeakPassword,
		},
		{
			name:     "missing username",
			body:     `{"email":"a@b.co","first_name":"A","last_name":"B","password":"SecureP@ssw0rd123!"}`,
			setup:    func(*database.MockQuerier) {},
			wantCode: http.StatusBadRequest,
			wantErr:  apiError.BadRequest,
		},
		{
			name:     "bad role",
			body:     `{"email":"a@b.co","username":"cook","first_name":"A","last_name":"B","password":"SecureP@ssw0rd123!","role":"root"}`,
			setup:    func(*database.MockQuerier) {},
			wantCode: http.StatusBadRequest,
			wantErr:  apiError.BadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := database.NewMockQuerier(ctrl)
			tt.setup(mockDB)
			e, err := env.New(log.NullLogger(), &database.Database{Querier: mockDB}, config.Config{})
			if err != nil {
				t.Fatal(err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(tt.body))
			req = req.WithContext(env.WithCtx(req.Context(), e))
			rec := httptest.NewRecorder()
			HandleCreateUser(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			if tt.wantErr == "" {
				var resp CreateUserResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.UserID != 3 {
					t.Errorf("response = %+v, %v", resp, err)
				}
				return
			}
			var body apiError.Error
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding error: %v", err)
			}
			if body.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", body.Code, tt.wantErr)
			}
		})
	}
}

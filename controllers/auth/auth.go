package authControllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/threadline/storefront-api/models"
	"github.com/threadline/storefront-api/store"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// -------- Request/Response Structs --------

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// -------- Helpers --------

// HashPassword hashes with bcrypt. The cost factor is tunable through
// BCRYPT_COST so deployments can trade verification latency for
// hardness.
func HashPassword(password string) (string, error) {
	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if c, err := strconv.Atoi(v); err == nil && c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
			cost = c
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword delegates the comparison to bcrypt.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateToken issues an opaque session token. It is not
// cryptographically verifiable — anyone who knows the scheme can forge
// one. Known limitation; hardening is out of scope.
func CreateToken(userID string) string {
	return fmt.Sprintf("tok_%s_%d", userID, time.Now().UTC().Unix())
}

// -------- Core Logic --------

// Signup creates a user with a hashed credential and issues a token.
func Signup(ctx context.Context, s store.Store, req SignupRequest) (*AuthResponse, error) {
	var existing models.User
	err := s.FindOne(ctx, models.UserCollection, bson.M{"email": req.Email}, &existing)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	uid, err := s.Insert(ctx, models.UserCollection, user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		UserID: uid,
		Name:   user.Name,
		Email:  user.Email,
		Token:  CreateToken(uid),
	}, nil
}

// Login verifies the credential. Unknown email and hash mismatch both
// return ErrInvalidCredentials so the response never leaks which check
// failed.
func Login(ctx context.Context, s store.Store, req LoginRequest) (*AuthResponse, error) {
	var user models.User
	err := s.FindOne(ctx, models.UserCollection, bson.M{"email": req.Email}, &user)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	uid := user.ID.Hex()
	return &AuthResponse{
		UserID: uid,
		Name:   user.Name,
		Email:  user.Email,
		Token:  CreateToken(uid),
	}, nil
}

// -------- Handlers --------

// POST /auth/signup
func SignupHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		resp, err := Signup(c.Request.Context(), s, req)
		if err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// POST /auth/login
func LoginHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		resp, err := Login(c.Request.Context(), s, req)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/aquamate-app/aquamate-backend/internal/config"
	"github.com/aquamate-app/aquamate-backend/internal/dto"
	"github.com/aquamate-app/aquamate-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register validates the payload, hashes the password and inserts the user.
// The users.email unique index is the authority on duplicates: the pre-check
// only produces the friendly error early, the constraint catch below closes
// the check-then-insert race.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	var problems []string
	if req.FullName == "" {
		problems = append(problems, "full name is required")
	}
	if req.Email == "" {
		problems = append(problems, "email is required")
	} else if !emailPattern.MatchString(req.Email) {
		problems = append(problems, "email format is invalid")
	}
	if req.Password == "" {
		problems = append(problems, "password is required")
	} else if len(req.Password) < 6 {
		problems = append(problems, "password must be at least 6 characters")
	}
	if req.Gender != "" && !models.ValidGender(req.Gender) {
		problems = append(problems, "gender must be one of Male, Female or Others")
	}
	var dob time.Time
	if req.DOB == "" {
		problems = append(problems, "date of birth is required")
	} else {
		var err error
		dob, err = time.Parse("2006-01-02", req.DOB)
		if err != nil {
			problems = append(problems, "date of birth must be YYYY-MM-DD")
		}
	}
	if len(problems) > 0 {
		return nil, validationError(problems)
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	gender := req.Gender
	if gender == "" {
		gender = "Male"
	}

	user := models.User{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       string(hash),
		Gender:         gender,
		DOB:            datatypes.Date(dob),
		ProfilePicture: models.DefaultProfilePicture,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &dto.RegisterResponse{
		Message: "User registered successfully. Please log in.",
		UserID:  user.ID,
	}, nil
}

// Login checks the credentials and issues a signed token. Unknown email and
// wrong password collapse into the same error so the response can't be used
// as an account oracle.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationError([]string{"email and password are required"})
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    dto.NewUserResponse(&user),
	}, nil
}

// GenerateToken mints an HS256 token with the user id as subject.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

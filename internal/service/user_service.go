package service

import (
	"errors"
	"strings"
	"time"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     interfaces.UserRepository
	sessions interfaces.SessionStore
	smtp     pkg.SMTPConfig
}

func NewUserService(repo interfaces.UserRepository, sessions interfaces.SessionStore, smtp pkg.SMTPConfig) *UserService {
	return &UserService{repo: repo, sessions: sessions, smtp: smtp}
}

// Register 注册：用户和资料同事务落库，欢迎邮件异步发、失败不影响注册
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password required")
	}
	if _, err := s.repo.FindByUsername(username); err == nil {
		return nil, errors.New("username already exists")
	}
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, errors.New("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	if err := s.repo.CreateWithProfile(user); err != nil {
		// 预检之后并发注册仍可能撞唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("username or email already exists")
		}
		return nil, err
	}

	if s.smtp.Host != "" {
		go func() {
			if err := pkg.SendEmail(s.smtp, email, "Welcome to Vega Blog", pkg.WelcomeHTML(username)); err != nil {
				pkg.Logger.Warn("welcome email failed", zap.String("email", email), zap.Error(err))
			}
		}()
	}
	return user, nil
}

// Login 校验密码并签发会话 token，token 同步写 redis
func (s *UserService) Login(username, password string) (string, *model.User, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return "", nil, errors.New("user not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, errors.New("invalid password")
	}
	token, err := pkg.GenerateSession(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	if err = s.sessions.AddUserToken(user.ID, token); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.DeleteUserToken(userID)
}

func (s *UserService) GetProfile(userID uint64) (*model.Profile, error) {
	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		return nil, notFound(err)
	}
	return profile, nil
}

// UpdateProfile 资料页可改的四个可选字段
func (s *UserService) UpdateProfile(userID uint64, bio, location string, birthDate *time.Time, photo string) (*model.Profile, error) {
	profile, err := s.repo.GetProfile(userID)
	if err != nil {
		return nil, notFound(err)
	}
	profile.Bio = bio
	profile.Location = location
	profile.BirthDate = birthDate
	if photo != "" {
		profile.Photo = photo
	}
	if err := s.repo.UpdateProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fittrackhq/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-service-session||"
	tokensSetKey     = "fittrack-service-sessions"
)

var (
	ErrWrongUsername = errors.New("wrong username")
	ErrWrongPassword = errors.New("wrong password")
)

type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string
	Password string
}

type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (as *Service) Login(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error) {
	if credentials.Username != as.admin.Username {
		return "", ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(credentials.Password, as.admin.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, createdAt.Unix(), 0)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	createdAtUnixStr := cmd.Val()
	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, err
	}

	cmdSet := as.redisClient.Set(ctx, sessionKey, 0, 0)
	if err := cmdSet.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return createdAtUnix > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	var cleaned int
	for _, token := range cmd.Val() {
		sessionKey := sessionKeyPrefix + token
		getCmd := as.redisClient.Get(ctx, sessionKey)
		if err := getCmd.Err(); err != nil {
			log.Errorf("auth service, scan and clean, get session %s: %s", token, err)
			continue
		}

		createdAtUnix, err := strconv.ParseInt(getCmd.Val(), 10, 64)
		if err != nil {
			log.Errorf("auth service, scan and clean, parse created at: %s", err)
			continue
		}

		if time.Since(time.Unix(createdAtUnix, 0)) <= as.ttl {
			continue
		}

		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("auth service, scan and clean, delete session %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, scan and clean, remove token %s: %s", token, err)
			continue
		}
		cleaned++
	}

	log.Debugf("auth service, scan and clean done, removed %d old sessions", cleaned)
}

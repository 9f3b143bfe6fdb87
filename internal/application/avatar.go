package application

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"

	"github.com/oksasatya/go-ddd-social/internal/domain/entity"
)

const defaultAvatarSize = 128

// AvatarURL maps a normalized email to its gravatar image. size <= 0 uses 128.
func AvatarURL(email string, size int) string {
	if size <= 0 {
		size = defaultAvatarSize
	}
	sum := md5.Sum([]byte(email))
	return "https://gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=" + strconv.Itoa(size)
}

// PublicIdentity reduces a stored user to username and avatar.
func PublicIdentity(u *entity.User, size int) entity.PublicUser {
	return entity.PublicUser{Username: u.Username, Avatar: AvatarURL(u.Email, size)}
}

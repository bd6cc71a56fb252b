package staff

import "crypto/rand"

// Алфавит без неоднозначных символов (0/O, 1/l/I), пароль диктуют по телефону.
const passwordAlphabet = "abcdefghjkmnpqrstuvwxyzABCDEFGHJKMNPQRSTUVWXYZ23456789"

const generatedPasswordLen = 12

// generatePassword возвращает случайный временный пароль.
func generatePassword() string {
	buf := make([]byte, generatedPasswordLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на поддерживаемых платформах не падает
		panic(err)
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf)
}

package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(from, to, subject, message string) error
}

func Connect(user, password, host, port string, tlsEnabled bool) error {
	Instance = &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
	}
	return nil
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
}

func (i impl) SendEMail(from, to, subject, message string) (err error) {
	logger := log.
		WithField("sender", from).
		WithField("recipient", to)
	if i.user == "" || i.host == "" || i.port == "" {
		logger.Warn("письмо не отправлено, тк не настроен smtp клиент")
		return nil
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	mimeHeaders := "MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\r\n"
	body := strings.NewReader(fmt.Sprintf("Subject: %s\n%s\r\n%s\r\n", subject, mimeHeaders, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, []string{to}, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, []string{to}, body)
	}
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
		return err
	}
	logger.Info("письмо отправлено")
	return nil
}

// Package services provides checks for the external services the test
// suites depend on.
package services

import (
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"

	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
	log "github.com/kkr-labs/kkrtestctl/pkg/logging"
)

// DialBroker enables stubbing broker connectivity in tests.
var DialBroker = dialBroker

func dialBroker(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	return conn.Close()
}

// CheckBroker probes the RabbitMQ broker the AiiDA daemon requires for
// workflow suites. An unreachable broker is reported, not fatal: the
// caller decides whether to advise NO_RMQ or abort.
func CheckBroker(url string) error {
	if url == "" {
		url = cfg.DefaultBrokerURL
	}
	log.Debug("probing message broker at %s", url)

	if err := DialBroker(url); err != nil {
		return errors.Wrapf(err, "message broker unreachable at %s", url)
	}
	return nil
}

package main

import (
	"github.com/sirupsen/logrus"
)

// Dispatcher turns command tokens into MediaController calls
type Dispatcher struct {
	Controller MediaController
	Log        logrus.FieldLogger
}

// Dispatch resolves token and posts it to target. An unknown token is the only
// error; whether the player acted on the command is never checked.
func (d *Dispatcher) Dispatch(target Target, token string) error {
	cmd, err := ParseCommand(token)
	if err != nil {
		return err
	}
	if err := d.Send(target, cmd); err != nil {
		d.logger().WithError(err).WithField("command", cmd).Debug("command delivery failed")
	}
	return nil
}

// Send posts cmd to target and returns whatever the controller reported
func (d *Dispatcher) Send(target Target, cmd Command) error {
	d.logger().WithFields(logrus.Fields{"command": cmd, "target": target}).Debug("sending command")
	return d.Controller.Control(target, cmd)
}

func (d *Dispatcher) logger() logrus.FieldLogger {
	if d.Log == nil {
		return logrus.StandardLogger()
	}
	return d.Log
}

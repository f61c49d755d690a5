package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

const EXIT_FAILURE = 1

func logError(message string, err error) {
	log.WithFields(errorFields(err)).Error(message)
}

// errorFields describes err, adding kind, token and cause of a scanError.
func errorFields(err error) log.Fields {
	fields := log.Fields{"error": err}
	scanErr, ok := asScanError(err)
	if !ok {
		return fields
	}
	fields["kind"] = scanErr.getKind()
	fields["technical"] = scanErr.isTechnical()
	if scanErr.is(errorMalformedNumber) {
		fields["token"] = scanErr.getToken()
	}
	if scanErr.hasCause() {
		fields["cause"] = scanErr.getCause()
	}
	return fields
}

func fatalError(message string, err error) {
	fatal(message, errorFields(err))
}

func fatal(message string, fields log.Fields) {
	log.WithFields(fields).Error(message)
	os.Exit(EXIT_FAILURE)
}

func info(message string, fields log.Fields) {
	log.WithFields(fields).Info(message)
}

func warn(message string, fields log.Fields) {
	log.WithFields(fields).Warn(message)
}

func configureLogging(level string, json bool) error {
	if json {
		log.SetFormatter(&log.JSONFormatter{})
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

package output

import (
	"github.com/sonemaro/dirguard/pkg/checker"
	"github.com/sonemaro/dirguard/pkg/logger"
	"gopkg.in/yaml.v3"
)

func (f *formatter) formatYAML(m *checker.MismatchError) (string, error) {
	f.log.Debug("Formatting YAML output")

	bytes, err := yaml.Marshal(f.buildReport(m))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}

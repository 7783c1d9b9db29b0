package files

import (
	"encoding/json"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v2"

	"github.com/apex/log"
)

func ReadJSON(v interface{}, pathElems ...string) error {
	return ReadUnmarshal(v, json.Unmarshal, pathElems...)
}

func ReadTOML(v interface{}, pathElems ...string) error {
	return ReadUnmarshal(v, toml.Unmarshal, pathElems...)
}

func ReadYAML(v interface{}, pathElems ...string) error {
	return ReadUnmarshal(v, yaml.Unmarshal, pathElems...)
}

type UnmarshalFunc func(data []byte, v interface{}) error

func ReadUnmarshal(v interface{}, unmarshal UnmarshalFunc, pathElems ...string) error {
	contents, err := Read(pathElems...)
	if err != nil {
		return err
	}
	err = unmarshal(contents, v)
	if err != nil {
		log.Debugf("could not parse file: %s", err.Error())
	}
	return err
}

package knowledge

import "github.com/sirupsen/logrus"

var Log = logrus.New()

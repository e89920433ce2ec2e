package quantum_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQuantum(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quantum Suite")
}

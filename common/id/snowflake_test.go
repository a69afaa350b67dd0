package id_test

import (
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/common/id"
)

var _ = Describe("NewRequestID", func() {
	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
	})

	It("returns numeric, unique ids", func() {
		seen := make(map[string]struct{})
		for range 100 {
			rid := id.NewRequestID()
			_, err := strconv.ParseInt(rid, 10, 64)
			Expect(err).NotTo(HaveOccurred())
			Expect(seen).NotTo(HaveKey(rid))
			seen[rid] = struct{}{}
		}
	})
})

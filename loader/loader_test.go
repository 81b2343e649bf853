package loader_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvhazard/insts"
	"github.com/sarchlab/rvhazard/loader"
)

var _ = Describe("Loader", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeInput := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("Parse", func() {
		It("should read one word per line", func() {
			words, err := loader.Parse(strings.NewReader("00A00093\n00108133\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(Equal([]uint32{0x00A00093, 0x00108133}))
		})

		It("should accept a missing final newline and CRLF endings", func() {
			words, err := loader.Parse(strings.NewReader("00a00093\r\n13"))
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(Equal([]uint32{0x00A00093, insts.NOP}))
		})

		It("should return no words for empty input", func() {
			words, err := loader.Parse(strings.NewReader(""))
			Expect(err).NotTo(HaveOccurred())
			Expect(words).To(BeEmpty())
		})

		It("should name the malformed line", func() {
			_, err := loader.Parse(strings.NewReader("00A00093\nzzzzzzzz\n00108133\n"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, loader.ErrMalformedInstruction)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("line 2"))
		})

		It("should reject blank lines", func() {
			_, err := loader.Parse(strings.NewReader("00A00093\n\n00108133\n"))
			Expect(errors.Is(err, loader.ErrMalformedInstruction)).To(BeTrue())
		})
	})

	Describe("Load", func() {
		It("should load a file", func() {
			path := writeInput("prog.hex", "00A00093\n00108133\n")

			prog, err := loader.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Path).To(Equal(path))
			Expect(prog.Words).To(HaveLen(2))
		})

		It("should report a missing file as unavailable input", func() {
			_, err := loader.Load(filepath.Join(dir, "missing.hex"))
			Expect(errors.Is(err, loader.ErrInputUnavailable)).To(BeTrue())
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
		})

		It("should return no program for a malformed file", func() {
			path := writeInput("bad.hex", "00A00093\nzzzzzzzz\n")

			prog, err := loader.Load(path)
			Expect(prog).To(BeNil())
			Expect(errors.Is(err, loader.ErrMalformedInstruction)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(path))
		})
	})

	Describe("Write", func() {
		It("should emit eight-digit lines", func() {
			var buf bytes.Buffer
			Expect(loader.Write(&buf, []uint32{0x00A00093, insts.NOP})).To(Succeed())
			Expect(buf.String()).To(Equal("00A00093\n00000013\n"))
		})

		It("should round-trip through Parse", func() {
			in := []uint32{0xDEADBEEF, 0, insts.NOP}

			var buf bytes.Buffer
			Expect(loader.Write(&buf, in)).To(Succeed())

			out, err := loader.Parse(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(in))
		})
	})

	Describe("WriteFile", func() {
		It("should write the file", func() {
			path := filepath.Join(dir, "out.hex")
			Expect(loader.WriteFile(path, []uint32{insts.NOP})).To(Succeed())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("00000013\n"))
		})

		It("should report an unwritable path", func() {
			path := filepath.Join(dir, "no-such-dir", "out.hex")

			err := loader.WriteFile(path, []uint32{insts.NOP})
			Expect(errors.Is(err, loader.ErrOutputWrite)).To(BeTrue())
		})
	})
})

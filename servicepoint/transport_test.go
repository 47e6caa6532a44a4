package servicepoint

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Transport", func() {
	It("parses transport names", func() {
		for name, want := range map[string]Kind{"udp": UDP, "UDP": UDP, "ws": WebSocket, "websocket": WebSocket, "fake": Fake} {
			k, err := ParseKind(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(k).To(Equal(want))
		}
		_, err := ParseKind("carrier-pigeon")
		Expect(err).To(HaveOccurred())
	})

	It("sends one datagram per packet over udp", func() {
		conn, err := net.ListenPacket("udp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		defer conn.Close()

		t, err := Dial(UDP, conn.LocalAddr().String())
		Expect(err).NotTo(HaveOccurred())
		defer t.Close()
		Expect(t.Send(SetBrightness(4))).To(Succeed())

		buf := make([]byte, 64)
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		n, _, err := conn.ReadFrom(buf)
		Expect(err).NotTo(HaveOccurred())
		var p Packet
		Expect(p.UnmarshalBinary(buf[:n])).To(Succeed())
		Expect(p).To(Equal(SetBrightness(4)))
	})

	It("sends binary messages over websockets", func() {
		received := make(chan []byte, 1)
		upgrader := websocket.Upgrader{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()
			kind, data, err := conn.ReadMessage()
			if err == nil && kind == websocket.BinaryMessage {
				received <- data
			}
		}))
		defer srv.Close()

		t, err := Dial(WebSocket, "ws"+strings.TrimPrefix(srv.URL, "http"))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Send(Clear())).To(Succeed())

		var data []byte
		Eventually(received).Should(Receive(&data))
		Expect(data).To(Equal([]byte{0, 2, 0, 0, 0, 0, 0, 0, 0, 0}))
		Expect(t.Close()).To(Succeed())
	})

	It("defaults to a display on this machine", func() {
		host, port, err := net.SplitHostPort(DefaultDestination)
		Expect(err).NotTo(HaveOccurred())
		Expect(net.ParseIP(host).IsLoopback()).To(BeTrue())
		Expect(port).To(Equal("2342"))
	})

	It("wants a websocket url", func() {
		_, err := Dial(WebSocket, "127.0.0.1:2342")
		Expect(err).To(HaveOccurred())
	})

	Describe("FakeTransport", func() {
		It("records packets until closed", func() {
			t := &FakeTransport{}
			Expect(t.Send(Clear())).To(Succeed())
			Expect(t.Packets).To(Equal([]Packet{Clear()}))

			Expect(t.Close()).To(Succeed())
			err := t.Send(Clear())
			Expect(err).To(MatchError(ErrClosed))
			var sendErr *SendError
			Expect(errors.As(err, &sendErr)).To(BeTrue())
			Expect(sendErr.Kind).To(Equal(Fake))
		})

		It("discards packets when dialed", func() {
			t, err := Dial(Fake, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(t.Send(Clear())).To(Succeed())
			Expect(t.(*FakeTransport).Packets).To(BeEmpty())
		})
	})
})

// Package mbus implements an M-Bus (EN 13757-3) primary-address master that
// talks to remote meters through a TCP/IP gateway.
//
// A Master issues short REQ_UD1/REQ_UD2 frames to addressed slaves and
// decodes the long VDS (Variable Data Structure) frames they return into a
// list of typed DataRecords. Only TCP is supported; there is no option to
// select a serial or UDP gateway. The FLOAT32/INT48/INT64 value decoders and
// the RSP_UD application-error response are unimplemented and surface as
// UnimplementedError.
//
// Generally the intended use is as follows:
//
//	m, err := mbus.New(mbus.MasterConfig{
//		Host: "192.168.1.50",
//		Port: 10001,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer m.Disconnect()
//
//	fields, err := m.GetAllFields(ctx, 1, mbus.CallOptions{})
package mbus

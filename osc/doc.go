// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc builds OpenSoundControl messages in place, ready to be sent as a single datagram.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//
//- 'b' (Blob) is recognized but not encoded; appending one returns an *UnsupportedTypeError.
//
//- Bundles are not supported.
//
//Messages
//
//A Message holds its wire form in a single buffer: the padded address, the padded type tag string
//and the argument payloads. Appending an argument writes its tag into the type tag string in place
//and its payload at the end of the buffer. The type tag string only grows every 4th argument;
//when it does, 4 bytes are spliced in and all payloads behind it are moved. Building very large
//messages one argument at a time is therefore quadratic in the worst case.
//
//Bytes returns the buffer itself, without any copying or re-serialization.
//
//Usage
//
//OSC client example:
//  client, err := osc.Dial("localhost:8765")
//  msg := osc.NewMessage("/osc/address")
//  msg.Append(int32(111))
//  msg.Append(float32(3.14))
//  msg.Append("hello")
//  client.Send(msg)
package osc
